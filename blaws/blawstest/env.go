package blawstest

import "testing"

// Env provides a chainable builder for the AWS env vars the default config loader reads. Create one with
// [SetBaseEnv].
type Env struct {
	t testing.TB
}

// SetBaseEnv sets static test credentials and a region so config.LoadDefaultConfig succeeds without touching
// the network.
//
// Defaults:
//   - AWS_REGION: "us-east-1"
//   - AWS_ACCESS_KEY_ID: "test"
//   - AWS_SECRET_ACCESS_KEY: "test"
//   - AWS_EC2_METADATA_DISABLED: "true"
func SetBaseEnv(t testing.TB) *Env {
	t.Helper()
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	return &Env{t: t}
}

// AWSRegion overrides AWS_REGION.
func (e *Env) AWSRegion(region string) *Env {
	e.t.Helper()
	e.t.Setenv("AWS_REGION", region)
	return e
}
