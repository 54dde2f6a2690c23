package http

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

// Formulario estático del generador; se sirve embebido para que el binario
// no dependa de archivos externos.
//
//go:embed form.html
var formHTML []byte

// Form sirve el formulario web del generador/comparador.
func Form(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(formHTML)
}
