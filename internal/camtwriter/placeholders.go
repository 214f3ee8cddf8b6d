package camtwriter

// Placeholders are the synthetic values for fields the target schema
// mandates but the source schema never carried. They are deliberately
// constant-valued defaults that a deployment can override through
// configuration without touching parsing or serialization logic.
type Placeholders struct {
	RecipientBIC        string `yaml:"recipient_bic" mapstructure:"recipient_bic"`
	ServicerBIC         string `yaml:"servicer_bic" mapstructure:"servicer_bic"`
	ServicerName        string `yaml:"servicer_name" mapstructure:"servicer_name"`
	ServicerOtherID     string `yaml:"servicer_other_id" mapstructure:"servicer_other_id"`
	ServicerOtherIssuer string `yaml:"servicer_other_issuer" mapstructure:"servicer_other_issuer"`
	AdditionalInfo      string `yaml:"additional_info" mapstructure:"additional_info"`
}

// DefaultPlaceholders returns the stock placeholder values.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		RecipientBIC:        "XXXXXXXX",
		ServicerBIC:         "XXXXXXXX",
		ServicerName:        "Bank",
		ServicerOtherID:     "XXX-000.000.000",
		ServicerOtherIssuer: "ID",
		AdditionalInfo:      "SPS/2.1",
	}
}
