package cli

import (
	"os"

	"github.com/spf13/viper"

	"category-audit-backend/internal/aecdm"
	"category-audit-backend/internal/config"
	"category-audit-backend/internal/errors"
	"category-audit-backend/internal/models"
	"category-audit-backend/internal/output"
	"category-audit-backend/internal/services/audit"
)

// buildService assembles the audit service from the environment plus the
// region flag override.
func buildService() (*audit.Service, error) {
	cfg := config.Load()
	if region := viper.GetString("region"); region != "" {
		cfg.Region = region
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tokens, err := aecdm.NewTokenSource(cfg.AccessToken, cfg.ClientID, cfg.ClientSecret, cfg.TokenEndpoint)
	if err != nil {
		return nil, err
	}

	client := aecdm.New(cfg.GraphQLEndpoint, cfg.Region, tokens).WithTimeout(cfg.RequestTimeout)
	return audit.NewService(client, cfg.PageLimit, cfg.DistinctLimit), nil
}

// requireElementGroup resolves the element group ID from the flag or the
// AECAUDIT_ELEMENT_GROUP environment variable.
func requireElementGroup() (string, error) {
	groupID := viper.GetString("element-group")
	if groupID == "" {
		return "", errors.NewValidationError("element-group",
			"element group ID required (--element-group or AECAUDIT_ELEMENT_GROUP)")
	}
	return groupID, nil
}

// loadContract reads the contract flag, falling back to the default contract
// when no file is given or the file lists no categories.
func loadContract() (*models.Contract, error) {
	path := viper.GetString("contract")
	if path == "" {
		return models.DefaultContract(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	contract, err := models.ParseContractYAML(data)
	if err != nil {
		return nil, err
	}
	if len(contract.Required) == 0 {
		return models.DefaultContract(), nil
	}

	contract.Normalize()
	if err := contract.Validate(); err != nil {
		return nil, err
	}
	return contract, nil
}

// resolveFormat validates the output flag and auto-detects when unset.
func resolveFormat() (output.Format, error) {
	format, err := output.ParseFormat(viper.GetString("output"))
	if err != nil {
		return "", err
	}
	return output.DetectFormat(string(format)), nil
}
