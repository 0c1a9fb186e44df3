package models

// Flash categories, mirrored by the stylesheet classes in the templates.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
)

// Flash is a one-time notice shown on the next rendered page and then
// discarded.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}
