package models

type Attachment struct {
	ID        int    `json:"id"`
	MessageID int    `json:"messageId"`
	FileName  string `json:"fileName"`
	FileSize  string `json:"fileSize"`
	FileType  string `json:"fileType"`
	URL       string `json:"url"`
}

type CreateAttachmentParams struct {
	MessageID int
	FileName  string
	FileSize  string
	FileType  string
	URL       string
}

// AttachmentPayload rides along on CreateMessageRequest when hasAttachment
// is set. URL is optional; the service generates one when it is empty.
type AttachmentPayload struct {
	FileName string `json:"fileName" binding:"required" conform:"trim"`
	FileSize string `json:"fileSize" binding:"required" conform:"trim"`
	FileType string `json:"fileType" binding:"required" conform:"trim"`
	URL      string `json:"url" conform:"trim"`
}
