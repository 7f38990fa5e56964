package http

import "net/http"

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// 预定义的响应码
const (
	CodeSuccess         = 0     // 成功
	CodeInvalidParam    = 10001 // 参数错误
	CodeServerError     = 10005 // 服务器内部错误
	CodeTimeout         = 10006 // 计算超时
	CodeTooManyRequests = 10007 // 限流
)

// 预定义的响应消息
const (
	MsgSuccess      = "success"
	MsgInvalidParam = "invalid parameters"
	MsgServerError  = "internal server error"
)

// NewResponse 创建响应
func NewResponse(code int, message string, data interface{}) *Response {
	return &Response{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// Success 成功响应
func (c *Context) Success(data interface{}) {
	c.JSON(http.StatusOK, NewResponse(CodeSuccess, MsgSuccess, data))
}

// ErrorWithCode 错误响应（自定义错误码）
func (c *Context) ErrorWithCode(code int, message string) {
	c.JSON(http.StatusOK, NewResponse(code, message, nil))
}

// BadRequest 400 错误请求
func (c *Context) BadRequest(message string) {
	if message == "" {
		message = MsgInvalidParam
	}
	c.JSON(http.StatusBadRequest, NewResponse(CodeInvalidParam, message, nil))
}

// InternalServerError 500 服务器内部错误
func (c *Context) InternalServerError(message string) {
	if message == "" {
		message = MsgServerError
	}
	c.JSON(http.StatusInternalServerError, NewResponse(CodeServerError, message, nil))
}
