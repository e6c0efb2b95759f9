package types

import "fmt"

// ContractConfig 每个网络的链上合约配置
type ContractConfig struct {
	FactRegistry    string // 条件转账 fact 注册合约
	CollateralToken string // 抵押资产（USDC）的 ERC20 合约
}

// contractConfigs 各网络的合约地址
var contractConfigs = map[NetworkID]ContractConfig{
	NetworkIDMainnet: {
		FactRegistry:    "0xBE9a129909EbCb954bC065536D2bfAfBd170d27A",
		CollateralToken: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	},
	NetworkIDGoerli: {
		FactRegistry:    "0x8Fb814935f7E63DEB304B500A1Bb8Dc9544764f4",
		CollateralToken: "0xF7413489c474ca4399eeE604716c72879eea3615",
	},
}

// GetContractConfig 获取指定网络的合约配置
func GetContractConfig(networkID NetworkID) (ContractConfig, error) {
	cfg, ok := contractConfigs[networkID]
	if !ok {
		return ContractConfig{}, fmt.Errorf("不支持的网络 ID: %d", networkID)
	}
	return cfg, nil
}
