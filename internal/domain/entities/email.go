package entities

// EmailAttachment is a binary file sent with an email.
type EmailAttachment struct {
	Filename string
	Content  []byte
}

// EmailMessage is an outbound transactional email.
type EmailMessage struct {
	To          []string
	Subject     string
	HTML        string
	Attachments []EmailAttachment
}
