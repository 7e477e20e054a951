package router

import (
	"shop_manager/handler"
	"shop_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	user := app.Group("/user", logger.New())
	user.Post("/register", validate.Register(), handler.Register)
	user.Post("/login", handler.Login)
	user.Put("/change-password", validate.ChangePassword(), handler.ChangePassword)
	user.Put("/change-info", validate.ChangeInfo(), handler.ChangeInfo)

	order := app.Group("/order", logger.New())
	order.Post("/create", validate.CreateOrder(), handler.CreateOrder)
	order.Get("/getall", handler.GetAllOrders)
	order.Get("/orders/:userId", validate.GetById("userId"), handler.GetOrdersByUser)
	order.Get("/suborders/:orderId", validate.GetById("orderId"), handler.GetSubOrders)
	order.Get("/detail/:publicCode", handler.GetOrderDetail)
	order.Get("/revenue", handler.GetRevenue)
	order.Get("/revenue-by-month", handler.GetRevenueByMonth)
	order.Post("/revenue", validate.RevenueRange(), handler.GetRevenueByRange)
	order.Put("/update-status/:orderId", validate.UpdateOrderStatus("orderId"), handler.UpdateOrderStatus)
	order.Get("/ws/:userId", websocket.New(handler.OrderFeedConnection))

	product := app.Group("/product", logger.New())
	product.Get("/", handler.GetProducts)
	product.Get("/top-selling", handler.GetTopSellingProducts)
	product.Get("/:productId", validate.GetById("productId"), handler.GetProductById)
	product.Post("/", validate.CreateProduct(), handler.CreateProduct)
	product.Post("/:productId/image", validate.GetById("productId"), handler.UploadProductImage)
	product.Put("/:productId", validate.EditProduct("productId"), handler.EditProduct)
	product.Delete("/", validate.Delete(), handler.DeleteProducts)

	promotion := app.Group("/promotion", logger.New())
	promotion.Get("/", handler.GetPromotions)
	promotion.Get("/:promotionId", validate.GetById("promotionId"), handler.GetPromotionById)
	promotion.Post("/", validate.CreatePromotion(), handler.CreatePromotion)
	promotion.Put("/:promotionId", validate.EditPromotion("promotionId"), handler.EditPromotion)
	promotion.Delete("/", validate.Delete(), handler.DeletePromotions)

	media := app.Group("/media", logger.New())
	media.Post("/cloudinary-signature", handler.GenerateSignature)
}
