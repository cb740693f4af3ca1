package routes

import (
	"github.com/BelkinSergey/shareit-server/services"
	"github.com/BelkinSergey/shareit-server/utils"
	"github.com/kataras/iris/v12"
)

func CreateRequest(ctx iris.Context) {
	var input services.CreateRequestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	request, err := requestService.Create(utils.CallerID(ctx), input)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(request)
}

func ListOwnRequests(ctx iris.Context) {
	views, err := requestService.FindAllByRequester(utils.CallerID(ctx))
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(views)
}

func ListOtherRequests(ctx iris.Context) {
	views, err := requestService.FindAllOfOthers(utils.CallerID(ctx))
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(views)
}

func GetRequest(ctx iris.Context) {
	requestID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid request id", ctx)
		return
	}

	view, err := requestService.FindByID(utils.CallerID(ctx), requestID)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(view)
}
