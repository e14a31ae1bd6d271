package errors

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"codeberg.org/codive/server/internal/logger"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.ValidationError() for request bodies that fail binding
//   - Use errors.InternalError() for failures after the request was accepted;
//     it logs and responds, so never log the same error again in the handler
//
// For services/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond

// validation types reported in ValidationIssue.Type
const (
	TypeMissing     = "missing"
	TypeJSONInvalid = "json_invalid"
	TypeWrongType   = "type_error"
)

// report json field names (not Go field names) in validation errors
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// returns a 422 with one issue per problem found in the request body
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, DetailResponse{
		Detail: ValidationIssues(err),
	})
}

// returns a 500 with detail as the body, logging err server-side
func InternalError(c *gin.Context, message string, err error, detail any) {
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.JSON(http.StatusInternalServerError, DetailResponse{
		Detail: detail,
	})
}

// converts a binding error into validation issues
func ValidationIssues(err error) []ValidationIssue {
	if err == nil {
		return []ValidationIssue{}
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		issues := make([]ValidationIssue, 0, len(fieldErrs))

		for _, fe := range fieldErrs {
			issues = append(issues, fieldIssue(fe))
		}

		return issues
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return []ValidationIssue{{
			Loc:  bodyLoc(typeErr.Field),
			Msg:  "input should be a valid " + typeErr.Value + " of type " + typeErr.Type.String(),
			Type: TypeWrongType,
		}}
	}

	if stderrors.Is(err, io.EOF) {
		return []ValidationIssue{{
			Loc:  []any{"body"},
			Msg:  "field required",
			Type: TypeMissing,
		}}
	}

	return []ValidationIssue{{
		Loc:  []any{"body"},
		Msg:  err.Error(),
		Type: TypeJSONInvalid,
	}}
}

func fieldIssue(fe validator.FieldError) ValidationIssue {
	// namespace is "Request.prompt" style, drop the struct name
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}

	issue := ValidationIssue{
		Loc:  bodyLoc(path),
		Msg:  "failed on the '" + fe.Tag() + "' rule",
		Type: fe.Tag(),
	}

	if fe.Tag() == "required" {
		issue.Msg = "field required"
		issue.Type = TypeMissing
	}

	return issue
}

// "conversation_history[0].content" -> ["body", "conversation_history", 0, "content"]
func bodyLoc(path string) []any {
	loc := []any{"body"}

	if path == "" {
		return loc
	}

	for _, segment := range strings.Split(path, ".") {
		name, rest, _ := strings.Cut(segment, "[")
		if name != "" {
			loc = append(loc, name)
		}

		for rest != "" {
			var key string
			key, rest, _ = strings.Cut(rest, "]")
			rest = strings.TrimPrefix(rest, "[")

			if index, err := strconv.Atoi(key); err == nil {
				loc = append(loc, index)
			} else {
				loc = append(loc, key)
			}
		}
	}

	return loc
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}
