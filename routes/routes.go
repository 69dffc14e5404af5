package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"go-agrisathi/advisory"
	"go-agrisathi/config"
	"go-agrisathi/controllers"
	"go-agrisathi/middleware"
	"go-agrisathi/providers"
)

// SetupRouter 配置所有路由
func SetupRouter(db *sql.DB) *gin.Engine {
	r := gin.Default()

	cfg := config.Get()

	// 天气源：配了API Key走OpenWeather，失败时降级到本地模拟器
	var weatherProvider providers.WeatherProvider = &providers.WeatherSimulator{}
	if cfg.Weather.APIKey != "" {
		weatherProvider = &providers.FallbackWeather{
			Primary:  providers.NewOpenWeatherClient(cfg.Weather.APIKey),
			Fallback: &providers.WeatherSimulator{},
		}
	}
	marketProvider := providers.NewMarketSimulator()

	var speaker providers.Speaker = providers.NoopSpeaker{}
	if cfg.Voice.Enabled {
		speaker = &providers.CommandSpeaker{}
	}

	// 创建控制器实例
	authController := controllers.NewAuthController(db)
	cropController := controllers.NewCropController()
	weatherController := controllers.NewWeatherController(weatherProvider)
	marketController := controllers.NewMarketController(marketProvider)
	advisoryController := controllers.NewAdvisoryController(
		advisory.NewSimulatedDetector(),
		providers.NewHTTPTranslator(),
		speaker,
	)
	expertController := controllers.NewExpertController(db)
	forumController := controllers.NewForumController(db)

	// 公共路由
	public := r.Group("/")
	{
		// 用户认证相关路由
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)

		// 作物知识库相关路由
		public.GET("/crops", cropController.ListCrops)
		public.GET("/crops/profile", cropController.GetProfile)
		public.GET("/crops/diseases", cropController.GetDiseases)
		public.GET("/crops/disease", cropController.GetDisease)

		// 天气和行情相关路由
		public.GET("/weather", weatherController.GetWeather)
		public.GET("/cities", weatherController.GetCities)
		public.GET("/market", marketController.GetPrices)

		// 咨询相关路由
		public.POST("/query/classify", advisoryController.ClassifyQuery)
		public.POST("/disease/analyze", advisoryController.AnalyzeImage)
		public.GET("/advisory/tips", advisoryController.GetTips)
	}

	// 需要认证的路由
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		// 专家求助相关路由
		protected.POST("/expert/question", expertController.SubmitQuestion)
		protected.GET("/expert/questions", expertController.GetQuestions)
		protected.GET("/expert/question", expertController.GetQuestion)

		// 论坛和反馈相关路由
		protected.POST("/forum/post", forumController.CreatePost)
		protected.GET("/forum/posts", forumController.GetPosts)
		protected.POST("/feedback/save", forumController.SaveFeedback)
	}

	return r
}
