package controller

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/minhhquann88/DoAn-sub001/internal/controller/middleware"
	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	notBlankTag  = "notblank"
	notBlankText = "{0} must not be blank"
)

var (
	validatorOnce sync.Once
	translator    ut.Translator
)

// RegisterValidators configures gin's validator engine: JSON field names in errors, the
// notblank tag and English messages. It is safe to call more than once.
func RegisterValidators() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Warn().Msg("Gin validator engine is not go-playground/validator; custom tags are not registered")
			return
		}
		english := en.New()
		translator, _ = ut.New(english, english).GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, translator)

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterTranslation(notBlankTag, translator,
			func(t ut.Translator) error { return t.Add(notBlankTag, notBlankText, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				s, _ := t.T(notBlankTag, fe.Field())
				return s
			},
		)
	})
}

// BindJSON binds the body into req and writes a 400 with per-field messages on failure.
func BindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Str("request_id", middleware.RequestID(ctx)).Msg("Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: validationDetails(err)})
		return false
	}
	return true
}

func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if translator != nil {
			details = append(details, fe.Translate(translator))
		} else {
			details = append(details, fe.Error())
		}
	}
	return details
}

// ParseIDParam reads a positive integer path parameter, writing a 400 when it is malformed.
func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// Caller returns the authenticated caller, writing a 401 when the auth middleware did not run.
func Caller(ctx *gin.Context) (service.Caller, bool) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return service.Caller{}, false
	}
	return caller, true
}

// StatusFor maps a service error kind to an HTTP status.
func StatusFor(err error) int {
	switch service.KindOf(err) {
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	case service.KindInvalidInput:
		return http.StatusBadRequest
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindWindowClosed:
		return http.StatusUnprocessableEntity
	case service.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a dto.ErrorResponse. Internal errors are logged and their
// text is not sent to the client.
func RespondError(ctx *gin.Context, err error, op string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("op", op).Str("request_id", middleware.RequestID(ctx)).Msg("Service error")
		ctx.JSON(status, dto.ErrorResponse{Message: "Internal server error"})
		return
	}
	log.Warn().Err(err).Str("op", op).Int("status", status).Str("request_id", middleware.RequestID(ctx)).Msg("Request rejected")
	var svcErr *service.Error
	msg := err.Error()
	if errors.As(err, &svcErr) {
		msg = svcErr.Message
	}
	ctx.JSON(status, dto.ErrorResponse{Message: msg, Details: []string{service.KindOf(err).String()}})
}
