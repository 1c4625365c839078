// 创建管理员账号脚本
//
// 用法: go run scripts/create_admin.go -username admin -email admin@example.com -password <密码>
package main

import (
	"flag"
	"log"
	"time"

	"github.com/VeyselCerav/kelime/internal/config"
	"github.com/VeyselCerav/kelime/internal/model"
	"github.com/VeyselCerav/kelime/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "admin", "管理员用户名")
	email := flag.String("email", "", "管理员邮箱")
	password := flag.String("password", "", "管理员密码")
	configPath := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email and password are required")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &model.User{
		Username:      *username,
		Email:         *email,
		Password:      string(hashed),
		Role:          model.Admin,
		EmailVerified: true,
		LastLogin:     time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin user %q created with id %d", user.Username, user.ID)
}
