package response

import (
	"Rentora/internal/service"
	stdjson "encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// OK 成功返回封装，payload 与 success 标记合并输出
func OK(c *gin.Context, payload gin.H) {
	write(c, http.StatusOK, payload)
}

// Created 资源创建成功
func Created(c *gin.Context, payload gin.H) {
	write(c, http.StatusCreated, payload)
}

func write(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// Error 处理错误。已知业务错误映射到对应状态码，
// 未知错误记日志后只回泛化信息，不向调用方泄漏内部细节
func Error(c *gin.Context, err error) {
	if isBindingError(err) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		log.ErrorContext(c.Request.Context(), "unexpected error", "err", err)
		Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
		return
	}
	Fail(c, status, err.Error())
}

// isBindingError 请求体绑定失败：校验不通过、JSON 语法或类型错误、空请求体。
// gin 绑定走 encoding/json，自有序列化走 goccy，两套错误类型都要认
func isBindingError(err error) bool {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}

	var stdSyntaxError *stdjson.SyntaxError
	var stdTypeError *stdjson.UnmarshalTypeError
	if errors.As(err, &stdSyntaxError) || errors.As(err, &stdTypeError) {
		return true
	}

	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError
	if errors.As(err, &syntaxError) || errors.As(err, &typeError) {
		return true
	}

	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
