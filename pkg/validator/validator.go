// Package validator 注册gin binding使用的自定义校验规则
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// DateLayout 日期字段格式（YYYY-MM-DD）
const DateLayout = "2006-01-02"

// registrar 保证规则只注册一次,首次注册的结果在之后每次调用时原样返回
type registrar struct {
	once sync.Once
	err  error
}

var defaultRegistrar registrar

// Register 向gin默认校验引擎注册自定义规则，可重复调用
//
// 已注册规则：
//   - notblank: 去除首尾空白后不能为空（"   "视为空）
//   - date:     字符串必须是YYYY-MM-DD格式的合法日期，空串跳过
//
// 同时让FieldError.Field()返回json字段名（如title），而不是Go结构体字段名
func Register() error {
	return defaultRegistrar.register(binding.Validator.Engine())
}

func (r *registrar) register(engine any) error {
	r.once.Do(func() {
		v, ok := engine.(*validator.Validate)
		if !ok {
			r.err = fmt.Errorf("gin校验引擎不是go-playground/validator: %T", engine)
			return
		}
		r.err = registerRules(v)
	})
	return r.err
}

func registerRules(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return err
	}
	return v.RegisterValidation("date", validateDate)
}

// jsonFieldName 取json标签中的字段名，json:"-"的字段返回空串（validator约定）
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// validateDate 指针字段由validator自动解引用，nil指针不会进入这里
func validateDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
