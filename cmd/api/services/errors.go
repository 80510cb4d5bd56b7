package services

import "errors"

// ErrValidation 은 요청 값이 규칙에 맞지 않을 때 반환된다. 핸들러는 422 로 매핑한다.
var ErrValidation = errors.New("validation failed")
