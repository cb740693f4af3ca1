package routes

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/BelkinSergey/shareit-server/models"
	"github.com/BelkinSergey/shareit-server/services"
	"github.com/BelkinSergey/shareit-server/storage"
	"github.com/BelkinSergey/shareit-server/utils"
	"github.com/kataras/iris/v12"
)

const searchCacheTTL = 60 * time.Second

func CreateItem(ctx iris.Context) {
	var input services.CreateItemInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	item, err := itemService.Create(utils.CallerID(ctx), input)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(item)
}

func UpdateItem(ctx iris.Context) {
	itemID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid item id", ctx)
		return
	}

	var input services.UpdateItemInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	item, err := itemService.Update(utils.CallerID(ctx), itemID, input)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(item)
}

func GetItem(ctx iris.Context) {
	itemID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid item id", ctx)
		return
	}

	view, err := itemService.FindByID(utils.CallerID(ctx), itemID)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(view)
}

func ListOwnerItems(ctx iris.Context) {
	views, err := itemService.FindAllByOwner(utils.CallerID(ctx))
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.JSON(views)
}

func DeleteItem(ctx iris.Context) {
	itemID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid item id", ctx)
		return
	}

	if err := itemService.Delete(utils.CallerID(ctx), itemID); err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.StatusCode(iris.StatusNoContent)
}

// SearchItems serves text search over available items, with a short
// Redis cache in front of the database. Cache failures fall through.
func SearchItems(ctx iris.Context) {
	text := ctx.URLParam("text")

	cacheKey := "items:search:" + strings.ToLower(text)
	if storage.Redis != nil {
		if raw, err := storage.Redis.Get(context.Background(), cacheKey).Result(); err == nil {
			var cached []models.Item
			if json.Unmarshal([]byte(raw), &cached) == nil {
				ctx.JSON(cached)
				return
			}
		}
	}

	items, err := itemService.Search(text)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}

	if storage.Redis != nil {
		if raw, err := json.Marshal(items); err == nil {
			storage.Redis.Set(context.Background(), cacheKey, raw, searchCacheTTL)
		}
	}
	ctx.JSON(items)
}

func AddComment(ctx iris.Context) {
	itemID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid item id", ctx)
		return
	}

	var input services.CreateCommentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	comment, err := itemService.AddComment(utils.CallerID(ctx), itemID, input)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(comment)
}
