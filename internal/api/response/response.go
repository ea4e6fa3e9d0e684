package response

import "github.com/gin-gonic/gin"

// Body 统一响应结构
type Body struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(200, Body{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Fail 失败响应，data 固定为空数组
func Fail(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Body{
		Success: false,
		Data:    []interface{}{},
		Message: message,
	})
}
