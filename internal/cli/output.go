package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/abitype/internal/app"
	"github.com/trebuchet-org/abitype/internal/cli/render"
)

// renderResult writes result as JSON when --json is set, otherwise through text
func renderResult[T any](cmd *cobra.Command, a *app.App, text render.Renderer[T], result T) error {
	if a.Config.JSON {
		return render.NewJSONRenderer[T](cmd.OutOrStdout()).Render(result)
	}
	return text.Render(result)
}
