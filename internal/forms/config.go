package forms

import "time"

// Config holds the delivery identifiers and timings of both forms.
type Config struct {
	ServiceID          string        `env:"FORMS_SERVICE_ID" envDefault:"service_r51c6zr"`
	ContactTemplateID  string        `env:"FORMS_CONTACT_TEMPLATE_ID" envDefault:"template_fbsu4k5"`
	DonationTemplateID string        `env:"FORMS_DONATION_TEMPLATE_ID" envDefault:"template_y4iweb6"`
	Recipient          string        `env:"FORMS_RECIPIENT" envDefault:"contacto@fundacionalmare.cl"`
	Timezone           string        `env:"FORMS_TIMEZONE" envDefault:"America/Santiago"`
	PaymentBaseURL     string        `env:"FORMS_PAYMENT_BASE_URL" envDefault:"https://www.paypal.me/FundacionAlmare"`
	ResetAfter         time.Duration `env:"FORMS_RESET_AFTER" envDefault:"5s"`
	InstanceTTL        time.Duration `env:"FORMS_INSTANCE_TTL" envDefault:"30m"`
	EvictInterval      time.Duration `env:"FORMS_EVICT_INTERVAL" envDefault:"1m"`
	MaxInstances       int           `env:"FORMS_MAX_INSTANCES" envDefault:"10000"`
}
