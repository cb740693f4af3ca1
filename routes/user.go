package routes

import (
	"github.com/BelkinSergey/shareit-server/services"
	"github.com/BelkinSergey/shareit-server/utils"
	"github.com/kataras/iris/v12"
)

func CreateUser(ctx iris.Context) {
	var input services.CreateUserInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, err := userService.Create(input)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(user)
}

func GetUser(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid user id", ctx)
		return
	}

	user, err := userService.GetByID(id)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(user)
}

func ListUsers(ctx iris.Context) {
	users, err := userService.All()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(users)
}

func UpdateUser(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid user id", ctx)
		return
	}

	var input services.UpdateUserInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, err := userService.Update(id, input)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(user)
}

func DeleteUser(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid user id", ctx)
		return
	}

	if err := userService.Delete(id); err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.StatusCode(iris.StatusNoContent)
}
