package myErrors

import (
	"errors"
	"fmt"
	"strings"
)

// 本包定义 board_service 的错误分类。未找到 (NotFound) 统一复用
// commonerrors.ErrRepoNotFound，其余分类在此定义为哨兵错误或类型，
// 调用方通过 errors.Is / errors.As 判别，控制器层再映射为 HTTP 状态码。

// ErrUnauthorized 表示帖子口令闸门拒绝了修改/删除操作。
// 按隐藏存在性策略，口令不匹配与（策略开启时）帖子缺失对外表现一致。
var ErrUnauthorized = errors.New("board: secret mismatch (unauthorized)")

// ErrInvalidPostID 表示帖子 ID 字符串格式非法。
// 与 NotFound 明确区分：格式合法但不存在的 ID 返回 NotFound。
var ErrInvalidPostID = errors.New("board: malformed post id")

// ErrBackendUnavailable 表示持久化后端不可达或调用失败。
// 本服务不做自动重试，重试策略属于上游调用方。
var ErrBackendUnavailable = errors.New("board: persistence backend unavailable")

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// FieldError 描述单个字段的校验失败。
type FieldError struct {
	Field  string `json:"field"`  // 字段名 (title / content / author / secret)
	Reason string `json:"reason"` // 失败原因，面向调用方的可读描述
}

// ValidationError 聚合一次请求中的全部字段级校验失败。
// 可恢复错误：调用方修正字段后可重试。
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "board: validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "board: validation failed: " + strings.Join(parts, "; ")
}

// Add 追加一条字段错误，便于校验逻辑链式收集。
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// HasErrors 报告是否收集到了字段错误。
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// WrapBackend 把底层数据库/缓存错误包装为 BackendUnavailable 分类，
// 同时保留原始错误文本用于日志排查。
func WrapBackend(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}
