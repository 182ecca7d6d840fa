package email

// Config holds email transport configuration.
// The Postmark tokens are optional so development environments can fall back
// to the dev sender; SenderEmail establishes the from-identity for all
// outbound mail and is always required.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
}
