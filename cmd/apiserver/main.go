package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cocoozhong/logistics-calculator-v2/internal/business"
	"github.com/cocoozhong/logistics-calculator-v2/internal/business/profit"
	"github.com/cocoozhong/logistics-calculator-v2/internal/business/quote"
	"github.com/cocoozhong/logistics-calculator-v2/internal/rates"
	profithandler "github.com/cocoozhong/logistics-calculator-v2/internal/server/handlers/profit"
	quotehandler "github.com/cocoozhong/logistics-calculator-v2/internal/server/handlers/quote"
	"github.com/cocoozhong/logistics-calculator-v2/internal/server/routers"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/config"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/infra/mysql"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/logger"
)

var (
	configPath = flag.String("config", "./config/apiserver.yaml", "配置文件路径")
)

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化 Logger
	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	// 3. 加载费率表、规则库与地点列表
	bundle, err := rates.NewLoader(zapLogger).Load(ctx, cfg.Rates)
	if err != nil {
		log.Fatalf("Failed to load rate tables: %v", err)
	}

	// 4. 组装报价服务（同步链路，不需要回调与通知）
	aggregator := quote.NewAggregator(bundle.Tables, cfg.Quote.CacheSize)
	quoteService := business.NewQuoteService(aggregator, bundle.Rules, bundle.Locations, nil, "", nil, "")

	// 5. 利润计算历史存储：配置了 MySQL 用数据库，否则退化为内存存储
	var store profit.Store
	if cfg.MySQL.DSN != "" {
		dao, err := mysql.NewRecordDAO(cfg.MySQL.DSN)
		if err != nil {
			log.Fatalf("Failed to create record DAO: %v", err)
		}
		defer dao.Close()
		store = dao
	} else {
		store = profit.NewMemoryStore()
	}

	// 6. 创建路由与 HTTP Server
	engine := routers.SetupRoutes(
		quotehandler.NewQuoteHandler(quoteService),
		profithandler.NewProfitHandler(store),
		zapLogger,
	)

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	// 7. 启动 HTTP Server（后台 goroutine）
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 8. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(server)
	case err := <-serverErrChan:
		log.Fatalf("HTTP server error: %v", err)
	}

	log.Println("Application stopped")
}

// gracefulShutdown 优雅停机
func gracefulShutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped gracefully")
	}
}
