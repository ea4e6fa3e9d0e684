package i18n

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"

	"noticeboard/internal/constants"
)

var messages = map[string]map[string]string{
	"en": {
		constants.MsgSuccess:      "Success",
		constants.MsgUnauthorized: "Authentication required",
		constants.MsgServerError:  "Internal server error",
	},
	"ko": {
		constants.MsgSuccess:      "성공",
		constants.MsgUnauthorized: "로그인이 필요합니다",
		constants.MsgServerError:  "서버 내부 오류가 발생했습니다",
	},
	"ja": {
		constants.MsgSuccess:      "成功しました",
		constants.MsgUnauthorized: "ログインが必要です",
		constants.MsgServerError:  "サーバー内部エラーが発生しました",
	},
	"zh": {
		constants.MsgSuccess:      "获取成功",
		constants.MsgUnauthorized: "未授权，请先登录",
		constants.MsgServerError:  "服务器内部错误",
	},
}

// Bundle 多语言消息集合
type Bundle struct {
	uni *ut.UniversalTranslator
}

// New 创建消息集合，defaultLocale 不受支持时回退到英文
func New(defaultLocale string) (*Bundle, error) {
	supported := []locales.Translator{en.New(), ko.New(), ja.New(), zh.New()}

	fallback := supported[0]
	for _, l := range supported {
		if l.Locale() == strings.ToLower(defaultLocale) {
			fallback = l
		}
	}

	uni := ut.New(fallback, supported...)
	for locale, texts := range messages {
		trans, found := uni.GetTranslator(locale)
		if !found {
			continue
		}
		for key, text := range texts {
			if err := trans.Add(key, text, false); err != nil {
				return nil, err
			}
		}
	}

	return &Bundle{uni: uni}, nil
}

// Negotiate 根据 Accept-Language 选择翻译器
func (b *Bundle) Negotiate(acceptLanguage string) ut.Translator {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return b.uni.GetFallback()
	}

	langs := make([]string, 0, len(tags)*2)
	for _, tag := range tags {
		langs = append(langs, strings.ReplaceAll(strings.ToLower(tag.String()), "-", "_"))
		if base, conf := tag.Base(); conf != language.No {
			langs = append(langs, base.String())
		}
	}

	trans, _ := b.uni.FindTranslator(langs...)
	return trans
}

// Lookup 翻译消息键，当前语言缺失时使用默认语言，仍缺失则返回键本身
func (b *Bundle) Lookup(trans ut.Translator, key string) string {
	if trans != nil {
		if text, err := trans.T(key); err == nil {
			return text
		}
	}
	if text, err := b.uni.GetFallback().T(key); err == nil {
		return text
	}
	return key
}

// Translate 使用请求上下文中的翻译器翻译消息键
func (b *Bundle) Translate(c *gin.Context, key string) string {
	if v, ok := c.Get(constants.ContextTranslatorKey); ok {
		if trans, ok := v.(ut.Translator); ok {
			return b.Lookup(trans, key)
		}
	}
	return b.Lookup(b.Negotiate(c.GetHeader("Accept-Language")), key)
}

// Translator 按请求语言翻译消息键
type Translator interface {
	Translate(c *gin.Context, key string) string
}

var _ Translator = (*Bundle)(nil)
