package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"wikipedia article not found"`
}

// MessageResponseDTO는 단순 메시지 응답 형식을 통일하기 위한 DTO이다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"saved article deleted"`
}

// BannerDTO 는 GET / 응답이다.
type BannerDTO struct {
	Message string `json:"message" example:"Wikipedia backend funcionando correctamente"`
	Version string `json:"version" example:"1.0"`
}

type HealthDTO struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
	Error    string `json:"error,omitempty"`
}
