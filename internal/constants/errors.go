package constants

// 翻译键，对应 internal/i18n 中的各语言文本
const (
	MsgSuccess      = "MSG.SUCCESS"
	MsgUnauthorized = "MSG.UNAUTHORIZED"
	MsgServerError  = "MSG.SERVER_ERROR"
)

// gin 上下文键
const (
	ContextCallerKey     = "caller"
	ContextTranslatorKey = "T"
)
