package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape of every error body. Conflicts carries the
// grouped schedule conflicts on 409 responses and stays absent otherwise.
type Response struct {
	Status    int    `json:"-"`
	Message   string `json:"error"`
	Conflicts any    `json:"conflicts,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, conflicts any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Conflicts: conflicts}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
