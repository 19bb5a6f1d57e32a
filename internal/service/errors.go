package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrPropertyNotFound  = errors.New("房产不存在")
	ErrListingNotFound   = errors.New("房源文案不存在")
	ErrAnalyticsNotFound = errors.New("房源暂无统计数据")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrPropertyNotFound:  NotFound,
	ErrListingNotFound:   NotFound,
	ErrAnalyticsNotFound: NotFound,
	UnExpectedError:      InternalServerError,
}
