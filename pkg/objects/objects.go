package objects

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/oarkflow/signup/pkg/contracts"
)

var (
	Config     contracts.Config
	Accounts   contracts.AccountCreator
	ViewEngine fiber.Views
	Layout     string
	Prefix     = "/"
	Log        = zap.NewNop()
)
