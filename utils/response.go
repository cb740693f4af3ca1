package utils

import (
	"github.com/BelkinSergey/shareit-server/services"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func CreateError(status int, title string, detail string, ctx iris.Context) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": title, "message": detail})
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Internal Server Error", "something went wrong", ctx)
}

// HandleValidationErrors answers a ReadJSON failure: field errors get a
// structured payload, anything else is a plain bad request.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]iris.Map, 0, len(errs))
		for _, fieldErr := range errs {
			fields = append(fields, iris.Map{
				"field": fieldErr.Field(),
				"tag":   fieldErr.Tag(),
				"value": fieldErr.Param(),
			})
		}
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"error": "Validation Error", "fields": fields})
		return
	}
	CreateError(iris.StatusBadRequest, "Bad Request", err.Error(), ctx)
}

// HandleServiceError maps a typed service failure onto its HTTP status.
func HandleServiceError(err error, ctx iris.Context) {
	switch services.KindOf(err) {
	case services.KindNotFound:
		CreateError(iris.StatusNotFound, "Not Found", err.Error(), ctx)
	case services.KindInvalidParameter:
		CreateError(iris.StatusBadRequest, "Validation Error", err.Error(), ctx)
	case services.KindAccessDenied:
		CreateError(iris.StatusForbidden, "Forbidden", err.Error(), ctx)
	case services.KindConflict:
		CreateError(iris.StatusConflict, "Conflict", err.Error(), ctx)
	default:
		CreateInternalServerError(ctx)
	}
}
