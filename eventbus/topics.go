package eventbus

var (
	// TopicArticleEvents 는 저장 아티클 생명주기 이벤트(analyzed/saved/note_updated/deleted) 토픽이다.
	TopicArticleEvents = NewTopic("wiki-analyzer.article.events")
)

var AllTopics = []Topic{
	TopicArticleEvents,
}
