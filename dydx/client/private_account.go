package client

import (
	"context"
	"fmt"

	"github.com/dexbot/godydx/dydx/types"
)

// GetAPIKeys 查询当前以太坊地址下的全部 API key
func (c *Client) GetAPIKeys(ctx context.Context) ([]string, error) {
	var resp struct {
		APIKeys []string `json:"apiKeys"`
	}
	if err := c.get(ctx, EndpointAPIKeys, nil, &resp); err != nil {
		return nil, err
	}
	return resp.APIKeys, nil
}

// GetRegistration 获取注册用的交易所签名
func (c *Client) GetRegistration(ctx context.Context) (string, error) {
	var resp struct {
		Signature string `json:"signature"`
	}
	if err := c.get(ctx, EndpointRegistration, nil, &resp); err != nil {
		return "", err
	}
	return resp.Signature, nil
}

// GetUser 查询用户信息
func (c *Client) GetUser(ctx context.Context) (*types.User, error) {
	var resp struct {
		User types.User `json:"user"`
	}
	if err := c.get(ctx, EndpointUsers, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateUserInput 用户信息更新参数，零值字段不提交
type UpdateUserInput struct {
	Email             string `json:"email,omitempty"`
	Username          string `json:"username,omitempty"`
	IsSharingUsername *bool  `json:"isSharingUsername,omitempty"`
	IsSharingAddress  *bool  `json:"isSharingAddress,omitempty"`
	Country           string `json:"country,omitempty"`
	LanguageCode      string `json:"languageCode,omitempty"`
	UserData          string `json:"userData,omitempty"`
}

// UpdateUser 更新用户信息
func (c *Client) UpdateUser(ctx context.Context, input *UpdateUserInput) (*types.User, error) {
	var resp struct {
		User types.User `json:"user"`
	}
	if err := c.put(ctx, EndpointUsers, input, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// GetAccount 查询单个账户
// ethereumAddress 为空时使用客户端默认地址；账户 ID 由地址确定性派生
func (c *Client) GetAccount(ctx context.Context, ethereumAddress string) (*types.Account, error) {
	if ethereumAddress == "" {
		ethereumAddress = c.ethereumAddress
	}
	if ethereumAddress == "" {
		return nil, fmt.Errorf("未设置 ethereum address")
	}
	var resp struct {
		Account types.Account `json:"account"`
	}
	if err := c.get(ctx, EndpointAccounts+"/"+GetAccountID(ethereumAddress), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Account, nil
}

// GetAccounts 查询全部账户
func (c *Client) GetAccounts(ctx context.Context) ([]types.Account, error) {
	var resp struct {
		Accounts []types.Account `json:"accounts"`
	}
	if err := c.get(ctx, EndpointAccounts, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

// GetPositions 查询持仓
func (c *Client) GetPositions(ctx context.Context, market types.Market, status, side, limit, createdBeforeOrAt string) ([]types.Position, error) {
	var resp struct {
		Positions []types.Position `json:"positions"`
	}
	err := c.get(ctx, EndpointPositions, map[string]string{
		"market":            string(market),
		"status":            status,
		"side":              side,
		"limit":             limit,
		"createdBeforeOrAt": createdBeforeOrAt,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Positions, nil
}

// GetFundingPayments 查询资金费用
func (c *Client) GetFundingPayments(ctx context.Context, market types.Market, limit, effectiveBeforeOrAt string) ([]types.FundingPayment, error) {
	var resp struct {
		FundingPayments []types.FundingPayment `json:"fundingPayments"`
	}
	err := c.get(ctx, EndpointFunding, map[string]string{
		"market":              string(market),
		"limit":               limit,
		"effectiveBeforeOrAt": effectiveBeforeOrAt,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.FundingPayments, nil
}

// GetHistoricalPNL 查询历史盈亏
func (c *Client) GetHistoricalPNL(ctx context.Context, createdBeforeOrAt, createdOnOrAfter string) ([]types.HistoricalPNLTick, error) {
	var resp struct {
		HistoricalPNL []types.HistoricalPNLTick `json:"historicalPnl"`
	}
	err := c.get(ctx, EndpointHistoricalPNL, map[string]string{
		"createdBeforeOrAt": createdBeforeOrAt,
		"createdOnOrAfter":  createdOnOrAfter,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.HistoricalPNL, nil
}

// SendVerificationEmail 发送验证邮件
func (c *Client) SendVerificationEmail(ctx context.Context) error {
	return c.put(ctx, EndpointSendVerificationEmail, nil, nil)
}

// GetTradingRewards 查询交易奖励
func (c *Client) GetTradingRewards(ctx context.Context, epoch string) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := c.get(ctx, EndpointRewardsWeight, map[string]string{"epoch": epoch}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetLiquidityProviderRewards 查询做市奖励
func (c *Client) GetLiquidityProviderRewards(ctx context.Context, epoch string) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := c.get(ctx, EndpointRewardsLiquidityProvider, map[string]string{"epoch": epoch}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetLiquidityRewards 查询旧版做市奖励
//
// Deprecated: 旧版奖励接口，服务端保留兼容；新代码使用 GetLiquidityProviderRewards。
func (c *Client) GetLiquidityRewards(ctx context.Context, epoch string) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := c.get(ctx, EndpointRewardsLiquidity, map[string]string{"epoch": epoch}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetRetroactiveMiningRewards 查询追溯挖矿奖励
func (c *Client) GetRetroactiveMiningRewards(ctx context.Context) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := c.get(ctx, EndpointRewardsRetroactiveMining, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RequestTestnetTokens 在测试网领取测试代币
// 仅对测试网络生效
func (c *Client) RequestTestnetTokens(ctx context.Context) (*types.Transfer, error) {
	if c.networkID == types.NetworkIDMainnet {
		return nil, fmt.Errorf("主网不支持领取测试代币")
	}
	var resp struct {
		Transfer types.Transfer `json:"transfer"`
	}
	if err := c.post(ctx, EndpointTestnetTokens, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Transfer, nil
}
