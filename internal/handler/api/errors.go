package api

import (
	"net/http"
	"strconv"

	"promocode-service/internal/domain/auth"
	"promocode-service/internal/domain/business"
	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/domain/user"
	"promocode-service/internal/handler/httperr"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/usecase/commands"
	"promocode-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const totalCountHeader = "X-Total-Count"

type errorMapping struct {
	status  int
	message string
	targets []error
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{http.StatusNotFound, "Not found", []error{
		commands.ErrPromocodeNotFound, commands.ErrCommentNotFound, commands.ErrUserNotFound,
		queries.ErrPromocodeNotFound, queries.ErrCommentNotFound, queries.ErrUserNotFound,
	}},
	{http.StatusForbidden, "Forbidden", []error{
		commands.ErrPromocodeNotOwned, commands.ErrCommentNotOwned, queries.ErrPromocodeAccess,
	}},
	{http.StatusConflict, "Email already registered", []error{commands.ErrEmailTaken}},
	{http.StatusUnauthorized, "Invalid email or password", []error{
		commands.ErrInvalidCredentials, auth.ErrInvalidCredentials,
	}},
	{http.StatusBadRequest, "Invalid request", []error{
		queries.ErrInvalidPage, queries.ErrInvalidSort, commands.ErrEmptyPatch,
		user.ErrInvalidEmail, user.ErrPasswordTooWeak, user.ErrInvalidName, user.ErrInvalidSurname,
		user.ErrInvalidAge, user.ErrInvalidAvatarURL, business.ErrInvalidName,
		promocode.ErrInvalidMode, promocode.ErrInvalidDescription, promocode.ErrInvalidImageURL,
		promocode.ErrInvalidMaxCount, promocode.ErrInvalidCommonCode, promocode.ErrInvalidUniqueCodes,
		promocode.ErrCommonWithUnique, promocode.ErrUniqueWithCommon, promocode.ErrUniqueMaxCount,
		promocode.ErrMaxCountBelowUsage, promocode.ErrInvalidActiveWindow, promocode.ErrInvalidAge,
		promocode.ErrInvalidAgeRange, promocode.ErrInvalidCountry, promocode.ErrInvalidCategories,
		promocode.ErrInvalidCommentText,
	}},
}

// abortWithMapped answers with the status registered for err, or 500.
func abortWithMapped(c *gin.Context, err error) {
	for _, m := range errorMappings {
		for _, target := range m.targets {
			if errs.Is(err, target) {
				msg := m.message
				if m.status == http.StatusBadRequest {
					msg = target.Error()
				}
				httperr.Abort(c, m.status, err, msg)
				return
			}
		}
	}
	httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
}

func setTotalCount(c *gin.Context, total int) {
	c.Header(totalCountHeader, strconv.Itoa(total))
}
