package api

type Topic string

const (
	ImportStatusUpdated = Topic("import-status-updated")
	ShowError           = Topic("show-error")
)

type Command interface {
	String() string
}

type Sender interface {
	SendToTopic(topic Topic)
	SendCommandToTopic(topic Topic, command Command)
	SendError(message string, err error)
}
