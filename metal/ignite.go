package metal

import (
	"github.com/DCSlucifer/quickblog-backend/metal/env"
	"github.com/DCSlucifer/quickblog-backend/metal/kernel"
	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
	"github.com/joho/godotenv"
)

func Ignite(envPath string, validate *portal.Validator) *env.Environment {
	if err := godotenv.Load(envPath); err != nil {
		panic("failed to read the .env file/values: " + err.Error())
	}

	return kernel.MakeEnv(validate)
}
