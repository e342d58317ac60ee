// Package blenv validates configuration from the environment once and caches the result.
//
// # Schema
//
// A configuration schema is a plain struct. Field names, defaults and required-ness are declared with
// [github.com/caarlos0/env/v11] tags. Transforms from the raw string come from the field's type: builtin kinds,
// types implementing encoding.TextUnmarshaler (such as [StrictBool]), or parsers registered with [WithParser].
// Additional rules are declared with [github.com/go-playground/validator/v10] tags and run on the transformed values:
//
//	type Env struct {
//	    TableName string           `env:"TABLE_NAME,required"`
//	    Enabled   blenv.StrictBool `env:"ENABLED" envDefault:"false"`
//	    Stage     string           `env:"STAGE" envDefault:"dev" validate:"oneof=dev staging prod"`
//	}
//
// # Manager
//
// [Manager] memoizes [Validate]. The first [Manager.Get] validates the environment and caches the snapshot, later
// calls return the identical pointer until [Manager.Refresh] re-validates:
//
//	var config = blenv.NewManager[Env]()
//
//	func handler(ctx context.Context) error {
//	    env, err := config.Get()
//	    if err != nil {
//	        return err
//	    }
//	    // ...
//	}
//
// Validation failures are reported as a single [*ValidationError] listing every failing field:
//
//	configuration validation failed: TABLE_NAME: required environment variable is not set; STAGE: must satisfy oneof=dev staging prod
//
// A failed Get leaves the cache empty, a failed Refresh keeps the previous snapshot.
package blenv
