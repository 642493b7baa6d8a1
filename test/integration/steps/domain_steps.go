package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"

	"github.com/finance-wallet/backend/internal/integration/persistence/model"
	"github.com/finance-wallet/backend/test/integration/mock"
)

// registerDomainSteps registers steps that seed domain resources through the API.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have an account "([^"]*)" of type "([^"]*)" with balance (-?\d+(?:\.\d+)?)$`, iHaveAnAccount)
	ctx.Step(`^I have a category "([^"]*)" of type "([^"]*)"$`, iHaveACategory)
	ctx.Step(`^I have a transaction "([^"]*)" of (-?\d+(?:\.\d+)?) on account "([^"]*)" and category "([^"]*)"$`, iHaveATransaction)
	ctx.Step(`^the transaction "([^"]*)" is reconciled$`, theTransactionIsReconciled)
	ctx.Step(`^the category "([^"]*)" is a default category$`, theCategoryIsADefaultCategory)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, iRememberTheResponseFieldAs)
}

// seedResource sends a POST and stores the created resource id under alias.
func (tc *TestContext) seedResource(endpoint, alias string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	if err := tc.doRequest(http.MethodPost, endpoint, body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to seed %s: status %d, body %s", alias, tc.response.StatusCode, string(tc.responseBody))
	}
	id, err := tc.responseField("id")
	if err != nil {
		return err
	}
	tc.ids[alias] = fmt.Sprintf("%v", id)
	return nil
}

func iHaveAnAccount(ctx context.Context, name, accountType string, balance float64) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	err := tc.seedResource("/api/v1/accounts", name, map[string]interface{}{
		"name":     name,
		"type":     accountType,
		"balance":  balance,
		"currency": "EUR",
	})
	return SetTestContext(ctx, tc), err
}

func iHaveACategory(ctx context.Context, name, categoryType string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	err := tc.seedResource("/api/v1/categories", name, map[string]interface{}{
		"name": name,
		"type": categoryType,
	})
	return SetTestContext(ctx, tc), err
}

func iHaveATransaction(ctx context.Context, alias string, amount float64, accountAlias, categoryAlias string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	accountID, ok := tc.ids[accountAlias]
	if !ok {
		return ctx, fmt.Errorf("unknown account alias '%s'", accountAlias)
	}
	categoryID, ok := tc.ids[categoryAlias]
	if !ok {
		return ctx, fmt.Errorf("unknown category alias '%s'", categoryAlias)
	}
	transactionType := "income"
	if amount < 0 {
		transactionType = "expense"
	}
	err := tc.seedResource("/api/v1/transactions", alias, map[string]interface{}{
		"account_id":  accountID,
		"category_id": categoryID,
		"amount":      amount,
		"description": alias,
		"type":        transactionType,
		"date":        "2024-03-10",
	})
	return SetTestContext(ctx, tc), err
}

func theTransactionIsReconciled(ctx context.Context, alias string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	id, ok := tc.ids[alias]
	if !ok {
		return ctx, fmt.Errorf("unknown transaction alias '%s'", alias)
	}
	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions/"+id+"/reconcile", nil); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusOK {
		return ctx, fmt.Errorf("failed to reconcile '%s': status %d, body %s", alias, tc.response.StatusCode, string(tc.responseBody))
	}
	return SetTestContext(ctx, tc), nil
}

// theCategoryIsADefaultCategory marks a seeded category as a system default.
// Default categories cannot be created through the API, so the flag is set
// directly in the test database.
func theCategoryIsADefaultCategory(ctx context.Context, alias string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	id, ok := tc.ids[alias]
	if !ok {
		return ctx, fmt.Errorf("unknown category alias '%s'", alias)
	}
	result := mock.NewDb().DbConn.
		Model(&model.CategoryModel{}).
		Where("id = ?", id).
		Update("is_default", true)
	if result.Error != nil {
		return ctx, fmt.Errorf("failed to mark category as default: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ctx, fmt.Errorf("category '%s' not found in database", alias)
	}
	return SetTestContext(ctx, tc), nil
}

func iRememberTheResponseFieldAs(ctx context.Context, field, alias string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	value, err := tc.responseField(field)
	if err != nil {
		return ctx, err
	}
	tc.ids[alias] = fmt.Sprintf("%v", value)
	return SetTestContext(ctx, tc), nil
}
