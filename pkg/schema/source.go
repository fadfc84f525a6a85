package schema

// DefaultEnv is the fabric all assets belong to unless a recipe says otherwise.
const DefaultEnv = "PROD"

// PlatformSourceConfig is the base shared by all platform-backed sources:
// the environment the produced assets belong to, the platform name, and an
// optional platform instance for platforms that are not globally unique.
type PlatformSourceConfig struct {
	Env              string `yaml:"env,omitempty" json:"env,omitempty" mapstructure:"env"`
	Platform         string `yaml:"platform,omitempty" json:"platform,omitempty" mapstructure:"platform"`
	PlatformInstance string `yaml:"platform_instance,omitempty" json:"platform_instance,omitempty" mapstructure:"platform_instance"`
}

// ApplyDefaults fills unset fields with their documented defaults.
func (c *PlatformSourceConfig) ApplyDefaults() {
	if c.Env == "" {
		c.Env = DefaultEnv
	}
}
