package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/datvbard/landprice/internal/config"
	"github.com/datvbard/landprice/internal/server"
)

var (
	port    = flag.Int("port", 0, "cổng dịch vụ (ghi đè config.toml)")
	devMode = flag.Bool("dev", false, "chế độ phát triển")
	dataDir = flag.String("dataDir", "", "thư mục dữ liệu (ghi đè config.toml)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Landprice - Tra cứu & quản lý giá đất")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Không đọc được cấu hình, dùng mặc định: %v", err)
		cfg = config.DefaultConfig()
	}

	// Tham số dòng lệnh ghi đè cấu hình
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	dataPath, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("Không tạo được thư mục dữ liệu: %v", err)
	} else {
		fmt.Printf("Thư mục dữ liệu: %s\n", dataPath)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Dịch vụ đang chạy tại http://localhost:%d\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("Không khởi động được dịch vụ: %v", err)
		}
	}()

	fmt.Println("\nNhấn Ctrl+C để dừng dịch vụ...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nĐang dừng dịch vụ...")
	if err := srv.Close(); err != nil {
		log.Printf("Đóng tài nguyên thất bại: %v", err)
	}
}
