package password

import "github.com/alfassih/praxis_backend/config"

// ParamsFromCentralConfig maps the password section of the central
// configuration to Argon2id parameters, falling back to defaults for
// unset fields.
func ParamsFromCentralConfig(conf config.PasswordConfig) *Params {
	p := DefaultParams()
	if conf.LowMemoryMode {
		p = LowMemoryParams()
	}
	if conf.MemoryKiB > 0 {
		p.Memory = conf.MemoryKiB
	}
	if conf.Iterations > 0 {
		p.Iterations = conf.Iterations
	}
	if conf.Parallelism > 0 {
		p.Parallelism = conf.Parallelism
	}
	if conf.SaltLength > 0 {
		p.SaltLength = conf.SaltLength
	}
	if conf.KeyLength > 0 {
		p.KeyLength = conf.KeyLength
	}
	return p
}
