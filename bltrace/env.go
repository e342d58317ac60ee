package bltrace

// Env reads the tracing setup from the environment.
type Env struct {
	Exporter    string   `env:"BL_OTEL_EXPORTER" envDefault:"stdout" validate:"oneof=stdout xrayudp"`
	ServiceName string   `env:"AWS_LAMBDA_FUNCTION_NAME" envDefault:"blambda"`
	LogGroups   []string `env:"BL_OTEL_LOG_GROUPS" envSeparator:","`
}
