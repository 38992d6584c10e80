// api/controller/controllers.go
package controller

// Controllers groups every HTTP controller for route registration.
type Controllers struct {
	Validation *ValidationController
}

func NewControllers(validation *ValidationController) *Controllers {
	return &Controllers{Validation: validation}
}
