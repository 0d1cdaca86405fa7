package domain

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is a user-facing notification emitted by cart and order
// mutations. The presentation layer decides how to display it.
type Notice struct {
	Message string      `json:"message"`
	Level   NoticeLevel `json:"level"`
}
