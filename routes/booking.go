package routes

import (
	"github.com/BelkinSergey/shareit-server/services"
	"github.com/BelkinSergey/shareit-server/utils"
	"github.com/kataras/iris/v12"
)

func CreateBooking(ctx iris.Context) {
	var input services.CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	booking, err := bookingService.Create(utils.CallerID(ctx), input)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(booking)
}

// UpdateBookingStatus applies the owner's confirm/reject decision from
// the approved query parameter.
func UpdateBookingStatus(ctx iris.Context) {
	bookingID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid booking id", ctx)
		return
	}

	raw := ctx.URLParam("approved")
	if raw != "true" && raw != "false" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "approved must be true or false", ctx)
		return
	}

	booking, err := bookingService.Confirm(utils.CallerID(ctx), bookingID, raw == "true")
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(booking)
}

func GetBooking(ctx iris.Context) {
	bookingID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid booking id", ctx)
		return
	}

	booking, err := bookingService.FindByID(utils.CallerID(ctx), bookingID)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(booking)
}

func ListBookerBookings(ctx iris.Context) {
	state := ctx.URLParamDefault("state", "ALL")

	bookings, err := bookingService.FindAllByBooker(utils.CallerID(ctx), state)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(bookings)
}

func ListOwnerBookings(ctx iris.Context) {
	state := ctx.URLParamDefault("state", "ALL")

	bookings, err := bookingService.FindAllByOwner(utils.CallerID(ctx), state)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(bookings)
}
