package helper

import (
	"errors"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"blog-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/zap"
)

const (
	textValidationError = "Validation error"
	textNotFound        = "Resource not found"
	textConflict        = "Resource already exists"
	textDatabaseError   = "Database error"
	textInternalError   = "Internal Server Error"
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Logger     *zap.Logger
}

// NewHTTPHelper builds a helper whose validator reports json field names and
// English messages.
func NewHTTPHelper(logger *zap.Logger) *HTTPHelper {
	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	// Registration only fails on a duplicate tag, which cannot happen on a
	// fresh validator.
	_ = en_translations.RegisterDefaultTranslations(validate, translator)
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	_ = validate.RegisterTranslation("notblank", translator,
		func(trans ut.Translator) error {
			return trans.Add("notblank", "{0} must not be blank", true)
		},
		func(trans ut.Translator, fe validator.FieldError) string {
			msg, _ := trans.T("notblank", fe.Field())
			return msg
		},
	)

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
		Logger:     logger,
	}
}

// GetStatusCode ...
// Map an error kind to its HTTP status and error label.
func (u *HTTPHelper) GetStatusCode(err error) (int, string) {
	var invalid *models.ErrorInvalidInput
	var notFound *models.ErrorNotFound
	var conflict *models.ErrorConflict
	var store *models.ErrorStore

	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest, textValidationError
	case errors.As(err, &notFound):
		return http.StatusNotFound, textNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict, textConflict
	case errors.As(err, &store):
		return http.StatusBadRequest, textDatabaseError
	default:
		return http.StatusInternalServerError, textInternalError
	}
}

// SendError ...
// Send error response to consumers. This is the only place an error becomes a
// status code.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status, label := u.GetStatusCode(err)

	var details any = err.Error()
	var invalid *models.ErrorInvalidInput
	if errors.As(err, &invalid) && len(invalid.Fields) > 0 {
		details = invalid.Fields
	}

	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
		zap.String("requestId", c.GetString(RequestIDKey)),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		u.Logger.Error("request failed", fields...)
	} else {
		u.Logger.Debug("request rejected", fields...)
	}

	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error:   label,
		Details: details,
	})
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BindJSON decodes the request body into req and validates it.
func (u *HTTPHelper) BindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return &models.ErrorInvalidInput{
			Message: "Invalid request body: " + err.Error(),
			Inner:   err,
		}
	}
	return u.ValidateStruct(req)
}

// ValidateStruct ...
// Run the validate tags of req and collect translated messages per field.
func (u *HTTPHelper) ValidateStruct(req any) error {
	err := u.Validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &models.ErrorInvalidInput{Message: err.Error(), Inner: err}
	}

	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, fieldErr := range validationErrors {
		key := fieldErr.Field()
		errorResponse[key] = append(errorResponse[key], errorTranslation[fieldErr.Namespace()])
	}

	return &models.ErrorInvalidInput{
		Message: "Invalid request body",
		Fields:  errorResponse,
		Inner:   err,
	}
}

// ParsePagination reads page and limit from the query string. Missing,
// non-numeric and non-positive values fall back to the defaults.
func (u *HTTPHelper) ParsePagination(c *gin.Context) (int, int) {
	return positiveOr(c.Query("page"), models.DefaultPage), positiveOr(c.Query("limit"), models.DefaultLimit)
}

func positiveOr(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// get pagination URL
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	query := r.URL.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	return scheme + "://" + r.Host + r.URL.Path + "?" + query.Encode()
}

// GeneratePaging ...
// Build first/prev/next/last links for the page. Links that do not apply are
// left out.
func (u *HTTPHelper) GeneratePaging(c *gin.Context, meta models.PageMeta) map[string]string {
	links := map[string]string{}
	page, limit := meta.Page, meta.Limit
	totalPages := int(math.Ceil(float64(meta.Total) / float64(limit)))

	if totalPages >= page && page > 1 {
		links["first"] = u.GetPagingUrl(c, 1, limit)
		links["prev"] = u.GetPagingUrl(c, page-1, limit)
	}

	if totalPages > page {
		links["next"] = u.GetPagingUrl(c, page+1, limit)
	}

	if totalPages >= page && totalPages != page {
		links["last"] = u.GetPagingUrl(c, totalPages, limit)
	}

	return links
}

// SetPagingLinks writes the paging links as an RFC 8288 Link header.
func (u *HTTPHelper) SetPagingLinks(c *gin.Context, meta models.PageMeta) {
	links := u.GeneratePaging(c, meta)

	parts := make([]string, 0, len(links))
	for _, rel := range []string{"first", "prev", "next", "last"} {
		if url, ok := links[rel]; ok {
			parts = append(parts, "<"+url+`>; rel="`+rel+`"`)
		}
	}

	if len(parts) > 0 {
		c.Header("Link", strings.Join(parts, ", "))
	}
}
