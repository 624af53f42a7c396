package controllers

import (
	"github.com/gofiber/fiber/v2"
)

type AppInfoController struct {
	env string
}

func NewAppInfoController(env string) *AppInfoController {
	return &AppInfoController{env: env}
}

func (ac *AppInfoController) GetEnvironment(c *fiber.Ctx) error {
	return c.SendString(ac.env)
}

func (ac *AppInfoController) GetCodeV1(c *fiber.Ctx) error {
	return c.SendString("The version of application: 2021")
}

func (ac *AppInfoController) GetCodeV2(c *fiber.Ctx) error {
	return c.SendString("The version of this application will be 2025")
}
