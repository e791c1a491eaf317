package mailer

import "time"

// Provider names accepted by Config.Provider.
const (
	ProviderEmailJS  = "emailjs"
	ProviderPostmark = "postmark"
	ProviderSES      = "ses"
	ProviderDev      = "dev"
)

// Config selects and configures the delivery provider.
type Config struct {
	Provider string        `env:"MAILER_PROVIDER" envDefault:"emailjs"`
	Timeout  time.Duration `env:"MAILER_TIMEOUT" envDefault:"10s"`

	// From and Recipient are used by providers that need explicit addresses.
	From      string `env:"MAILER_FROM" envDefault:"contacto@fundacionalmare.cl"`
	Recipient string `env:"MAILER_RECIPIENT" envDefault:"contacto@fundacionalmare.cl"`

	EmailJSEndpoint    string `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
	EmailJSPublicKey   string `env:"EMAILJS_PUBLIC_KEY" envDefault:"QyPVw7KzUKNZLE68v"`
	EmailJSAccessToken string `env:"EMAILJS_ACCESS_TOKEN"` // private key, optional

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SESRegion string `env:"SES_REGION" envDefault:"us-east-1"`

	DevDir string `env:"MAILER_DEV_DIR" envDefault:"./tmp/mail"`
}
