package util

import "github.com/gin-gonic/gin"

// SuccessResponse is the envelope of a JSON action that succeeded. A nil
// data is left out.
func SuccessResponse(data interface{}) gin.H {
	if data == nil {
		return gin.H{"success": true}
	}
	return gin.H{"success": true, "data": data}
}

// SuccessMessage is the envelope for routes that only report an outcome.
func SuccessMessage(message string) gin.H {
	return gin.H{"success": true, "message": message}
}

// FailedResponse reports err to the client in the shared envelope.
func FailedResponse(err error) gin.H {
	return gin.H{"success": false, "message": FormatValidationError(err)}
}

func FailedMessage(message string) gin.H {
	return gin.H{"success": false, "message": message}
}
