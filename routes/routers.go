package routes

import (
	"context"
	"net/http"
	"time"

	"phongtro/constants"
	"phongtro/controllers"
	middlewares "phongtro/middleware"
	"phongtro/response"
	"phongtro/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	bookingService := services.NewBookingService(db, redisCli, m)
	wizardService := services.NewWizardService(services.NewRedisWizardStore(redisCli), bookingService)
	bookingController := controllers.NewBookingController(bookingService, wizardService)

	loginLimiter := middlewares.NewIPRateLimiter(10, 5, 10*time.Minute)

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", loginLimiter.Middleware(), controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.DELETE("/auth/logout", controllers.Logout)

	v1.GET("/rooms", controllers.GetAllRooms)
	v1.GET("/rooms/featured", controllers.GetFeaturedRooms)
	v1.GET("/rooms/search", controllers.SearchRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)

	// wizard đặt phòng gắn với session, không cần đăng nhập
	wizard := v1.Group("/rooms/:id/booking", middlewares.SessionMiddleware())
	wizard.GET("", bookingController.GetWizardState)
	wizard.POST("/form", bookingController.SubmitWizardForm)
	wizard.POST("/payment", bookingController.ConfirmWizardPayment)

	admin := v1.Group("/admin", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleModerator))

	admin.GET("/rooms", controllers.GetAllRooms)
	admin.POST("/rooms", controllers.CreateRoom)
	admin.PUT("/rooms/:id", controllers.UpdateRoom)
	admin.DELETE("/rooms/:id", controllers.DeleteRoom)

	admin.GET("/users", controllers.GetUsers)
	admin.POST("/users", controllers.CreateUser)
	admin.PUT("/users/:id", controllers.UpdateUser)
	admin.DELETE("/users/:id", controllers.DeleteUser)
	admin.POST("/users/bulk-delete", controllers.BulkDeleteUsers)
	admin.GET("/users/export", controllers.ExportUsersCSV)

	admin.GET("/bookings", bookingController.GetBookings)
	admin.POST("/bookings", bookingController.CreateBooking)
	admin.PUT("/bookings/:bookingId", bookingController.UpdateBooking)
	admin.DELETE("/bookings/:bookingId", bookingController.DeleteBooking)

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleModerator), func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})
}
