package main

import (
	"log"

	"go-agrisathi/config"
	"go-agrisathi/routes"
)

func main() {
	// 加载配置并初始化数据库连接
	cfg := config.Load()
	config.InitDB()

	// 设置路由
	r := routes.SetupRouter(config.DB)

	// 启动服务器
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
