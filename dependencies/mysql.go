package dependencies

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/models/entities"
)

const (
	mysqlConnectRetries  = 5
	mysqlConnectInterval = 2 * time.Second
)

// InitMySQL 建立 MySQL 连接并完成建表迁移。
// 留言板是读多写少的负载（列表/详情远多于发帖），配置了从库时
// 通过 dbresolver 把读流量分摊出去，写与迁移始终落在主库。
func InitMySQL(cfg *appConfig.BoardConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig
	if mysqlCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (mysqlConfig.write.dsn) 未配置")
	}

	db, err := openWithRetry(mysqlCfg.Write.DSN, &gorm.Config{
		Logger: core.NewGormLogger(logger, cfg.GormLogConfig),
	}, logger)
	if err != nil {
		return nil, err
	}

	if err := registerReadReplicas(db, &mysqlCfg, logger); err != nil {
		return nil, err
	}
	if err := tuneConnectionPool(db, &mysqlCfg, logger); err != nil {
		return nil, err
	}

	// AutoMigrate 走主库；帖子与附件两张表由本服务独占。
	if err := db.AutoMigrate(&entities.Post{}, &entities.Attachment{}); err != nil {
		logger.Error("数据库自动迁移失败", zap.Error(err))
		return nil, fmt.Errorf("数据库自动迁移失败: %w", err)
	}

	logger.Info("MySQL 初始化完成（含读写分离与自动迁移）")
	return db, nil
}

// openWithRetry 带重试地打开主库连接。
// 容器编排下数据库常晚于服务就绪，固定间隔重试比直接失败更合适。
func openWithRetry(dsn string, gormCfg *gorm.Config, logger *core.ZapLogger) (*gorm.DB, error) {
	var db *gorm.DB
	var lastErr error

	for attempt := 1; attempt <= mysqlConnectRetries; attempt++ {
		db, lastErr = gorm.Open(mysql.Open(dsn), gormCfg)
		if lastErr == nil {
			var sqlDB *sql.DB
			if sqlDB, lastErr = db.DB(); lastErr == nil {
				if lastErr = sqlDB.Ping(); lastErr == nil {
					logger.Info("主数据库连接成功", zap.Int("attempt", attempt))
					return db, nil
				}
			}
		}
		logger.Warn("主数据库连接失败，等待重试",
			zap.Int("attempt", attempt),
			zap.Int("maxRetries", mysqlConnectRetries),
			zap.Error(lastErr))
		if attempt < mysqlConnectRetries {
			time.Sleep(mysqlConnectInterval)
		}
	}
	return nil, fmt.Errorf("连接主数据库失败（已重试 %d 次）: %w", mysqlConnectRetries, lastErr)
}

// registerReadReplicas 按配置挂载从库；没有有效从库时保持单源模式。
func registerReadReplicas(db *gorm.DB, mysqlCfg *appConfig.MySQLConfig, logger *core.ZapLogger) error {
	replicas := make([]gorm.Dialector, 0, len(mysqlCfg.Read))
	for i, rc := range mysqlCfg.Read {
		if rc.DSN == "" {
			logger.Warn("从库 DSN 为空，跳过该条目", zap.Int("index", i))
			continue
		}
		replicas = append(replicas, mysql.Open(rc.DSN))
	}
	if len(replicas) == 0 {
		logger.Info("未配置有效从库，读写均走主库")
		return nil
	}

	err := db.Use(dbresolver.Register(dbresolver.Config{
		Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
		Replicas: replicas,
		Policy:   dbresolver.StrictRoundRobinPolicy(),
	}))
	if err != nil {
		logger.Error("注册读写分离插件失败", zap.Error(err))
		return fmt.Errorf("注册读写分离插件失败: %w", err)
	}
	logger.Info("读写分离已启用", zap.Int("replicaCount", len(replicas)))
	return nil
}

// tuneConnectionPool 以共享池参数为基准、主库条目的独立参数为覆盖来设置连接池。
func tuneConnectionPool(db *gorm.DB, mysqlCfg *appConfig.MySQLConfig, logger *core.ZapLogger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("获取底层数据库句柄失败: %w", err)
	}

	maxIdle := mysqlCfg.SharedMaxIdleConns
	maxOpen := mysqlCfg.SharedMaxOpenConns
	maxLife := mysqlCfg.SharedConnMaxLifetime
	if mysqlCfg.Write.MaxIdleConns != nil {
		maxIdle = *mysqlCfg.Write.MaxIdleConns
	}
	if mysqlCfg.Write.MaxOpenConns != nil {
		maxOpen = *mysqlCfg.Write.MaxOpenConns
	}
	if mysqlCfg.Write.ConnMaxLifetime != nil {
		maxLife = *mysqlCfg.Write.ConnMaxLifetime
	}

	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLife) * time.Second)
	logger.Info("数据库连接池已配置",
		zap.Int("maxIdleConns", maxIdle),
		zap.Int("maxOpenConns", maxOpen),
		zap.Int("connMaxLifetimeSeconds", maxLife))

	if pingErr := sqlDB.Ping(); pingErr != nil {
		return fmt.Errorf("连接池配置后 Ping 失败: %w", pingErr)
	}
	return nil
}
