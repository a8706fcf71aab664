package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	colorable "github.com/mattn/go-colorable"
	"github.com/nsyszr/festival/config"
	"github.com/nsyszr/festival/pkg/api"
	"github.com/nsyszr/festival/pkg/schedule"
	"github.com/nsyszr/festival/pkg/storage/memory"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ExecHandler executes a single GraphQL request against the data file, the
// same way a function invocation is handled.
type ExecHandler struct {
	c *config.Config
}

func newExecHandler(c *config.Config) *ExecHandler {
	return &ExecHandler{c: c}
}

func (h *ExecHandler) Exec(cmd *cobra.Command, args []string) {
	configureLogging(h.c.LogLevel, colorable.NewColorableStderr())

	query, _ := cmd.Flags().GetString("query")
	variables, _ := cmd.Flags().GetString("variables")

	req, err := readRequest(cmd.InOrStdin(), query, variables)
	if err != nil {
		log.Errorf("An error occurred while reading the request: %s", err)
		os.Exit(2)
	}

	if err := h.run(context.Background(), req, cmd.OutOrStdout()); err != nil {
		log.Errorf("An error occurred while executing the request: %s", err)
		os.Exit(1)
	}
}

func (h *ExecHandler) run(ctx context.Context, req api.Request, out io.Writer) error {
	store, err := memory.NewStoreFromFile(h.c.DataFile)
	if err != nil {
		return err
	}

	exec, err := api.NewExecutor(schedule.New(store, nil))
	if err != nil {
		return err
	}

	res := exec.Execute(ctx, req)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(res), "failed to write response")
}

// configureLogging writes colored log entries to out, stdout is reserved for
// the response
func configureLogging(level string, out io.Writer) {
	log.SetFormatter(&log.TextFormatter{
		ForceColors: true,
	})
	log.SetOutput(out)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// readRequest builds the request from the flags, or decodes a request
// envelope from in when no query is given
func readRequest(in io.Reader, query, variables string) (api.Request, error) {
	req := api.Request{}

	if query == "" {
		if err := json.NewDecoder(in).Decode(&req); err != nil {
			return req, errors.Wrap(err, "failed to decode request envelope")
		}
	} else {
		req.Query = query
		if variables != "" {
			if err := json.Unmarshal([]byte(variables), &req.Variables); err != nil {
				return req, errors.Wrap(err, "failed to decode variables")
			}
		}
	}

	if req.Query == "" {
		return req, fmt.Errorf("query is required")
	}
	return req, nil
}
