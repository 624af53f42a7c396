package controllers

import (
	"errors"

	"cinevault-backend/database"
	"cinevault-backend/dto"
	"cinevault-backend/middlewares"
	"cinevault-backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserController struct {
	log logrus.FieldLogger
}

func NewUserController(log logrus.FieldLogger) *UserController {
	return &UserController{log: log.WithField("controller", "users")}
}

func (uc *UserController) GetUsersV1(c *fiber.Ctx) error {
	uc.log.Info("Called GetUsersVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	users, err := services.ListUsers(tx)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func (uc *UserController) GetUsersV2(c *fiber.Ctx) error {
	var req dto.APIRequest
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	uc.log.WithField("request_id", req.RequestID).Info("Called GetUsersVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	users, err := services.ListUsers(tx)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToResponseWith(req, true, msgSuccess, fiber.StatusOK, users))
}

func (uc *UserController) GetUserV1(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	log := uc.log.WithField("user_id", id)
	log.Info("Called GetUserByIdVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	user, err := services.GetUser(tx, id)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("User not found")
		return noContent(c, fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (uc *UserController) GetUserV2(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	var req dto.APIRequest
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	log := uc.log.WithFields(logrus.Fields{"user_id": id, "request_id": req.RequestID})
	log.Info("Called GetUserByIdVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	user, err := services.GetUser(tx, id)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("User not found")
		return c.Status(fiber.StatusNotFound).JSON(req.ToResponse(false, msgFailure, fiber.StatusNotFound))
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.ToResponseWith(req, true, msgSuccess, fiber.StatusOK, user))
}

func (uc *UserController) CreateUserV1(c *fiber.Ctx) error {
	var input dto.UserRequest
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	uc.log.WithField("username", input.Username).Info("Called CreateUserVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	user, err := services.CreateUser(tx, input)
	if err != nil {
		return err
	}
	uc.log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("User created")
	setLocation(c, 1, "users", user.ID)
	return noContent(c, fiber.StatusOK)
}

func (uc *UserController) CreateUserV2(c *fiber.Ctx) error {
	var req dto.APIRequestWith[dto.UserRequest]
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	uc.log.WithFields(logrus.Fields{"username": req.Data.Username, "request_id": req.RequestID}).Info("Called CreateUserVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	user, err := services.CreateUser(tx, req.Data)
	if err != nil {
		return err
	}
	uc.log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("User created")
	setLocation(c, 2, "users", user.ID)
	return c.JSON(dto.ToResponseWith(req.APIRequest, true, msgSuccess, fiber.StatusOK, user.Username))
}

func (uc *UserController) UpdateUserV1(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	var input dto.UserRequest
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	log := uc.log.WithField("user_id", id)
	log.Info("Called UpdateUserVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	err = services.UpdateUser(tx, id, input)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("UpdateUser: user not found")
		return noContent(c, fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	log.Info("User updated successfully")
	return noContent(c, fiber.StatusOK)
}

func (uc *UserController) UpdateUserV2(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	var req dto.APIRequestWith[dto.UserRequest]
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	log := uc.log.WithFields(logrus.Fields{"user_id": id, "request_id": req.RequestID})
	log.Info("Called UpdateUserVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	err = services.UpdateUser(tx, id, req.Data)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("UpdateUser: user not found")
		return c.Status(fiber.StatusNotFound).JSON(req.ToResponse(false, msgFailure, fiber.StatusNotFound))
	}
	if err != nil {
		return err
	}
	log.Info("User updated successfully")
	return c.JSON(req.ToResponse(true, msgSuccess, fiber.StatusOK))
}

func (uc *UserController) DeleteUserV1(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	log := uc.log.WithField("user_id", id)
	log.Info("Called DeleteUserVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	err = services.DeleteUser(tx, id)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("DeleteUser: user not found")
		return noContent(c, fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	log.Info("User deleted successfully")
	return noContent(c, fiber.StatusOK)
}

func (uc *UserController) DeleteUserV2(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	var req dto.APIRequest
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	log := uc.log.WithFields(logrus.Fields{"user_id": id, "request_id": req.RequestID})
	log.Info("Called DeleteUserVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	err = services.DeleteUser(tx, id)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("DeleteUser: user not found")
		return c.Status(fiber.StatusNotFound).JSON(req.ToResponse(false, msgFailure, fiber.StatusNotFound))
	}
	if err != nil {
		return err
	}
	log.Info("User deleted successfully")
	return c.JSON(req.ToResponse(true, msgSuccess, fiber.StatusOK))
}
