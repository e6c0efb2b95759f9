package starkex

import (
	"crypto/sha256"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
)

// nonceUpperBound nonce 的排他上界（2^32）
var nonceUpperBound = new(big.Int).Lsh(big.NewInt(1), 32)

// NonceFromClientID 从 client id 确定性地派生 nonce
// 取 sha256(client_id) 对 2^32 取模，任意字符串均可作为输入
func NonceFromClientID(clientID string) *big.Int {
	digest := sha256.Sum256([]byte(clientID))
	nonce := new(big.Int).SetBytes(digest[:])
	return nonce.Mod(nonce, nonceUpperBound)
}

// GetTransferERC20Fact 派生条件转账的 fact
// 按 solidity 紧凑编码 keccak256(recipient ++ tokenAmount ++ tokenAddress ++ salt)，
// 其中 tokenAmount 为 humanAmount 按 tokenDecimals 量化后的整数。
// 地址在参与哈希前统一转为小写解析，因此同一地址的不同大小写产生相同 fact。
func GetTransferERC20Fact(
	recipient string,
	tokenDecimals int,
	humanAmount string,
	tokenAddress string,
	salt *big.Int,
) (string, error) {
	recipient = strings.ToLower(recipient)
	tokenAddress = strings.ToLower(tokenAddress)
	if !common.IsHexAddress(recipient) {
		return "", newPreconditionError("接收地址无效: %q", recipient)
	}
	if !common.IsHexAddress(tokenAddress) {
		return "", newPreconditionError("代币合约地址无效: %q", tokenAddress)
	}
	if salt == nil || salt.Sign() < 0 {
		return "", newPreconditionError("salt 无效")
	}

	tokenAmount, err := QuantizeAmount(humanAmount, tokenDecimals)
	if err != nil {
		return "", err
	}

	// solidityKeccak(['address', 'uint256', 'address', 'uint256'], ...)
	packed := make([]byte, 0, 20+32+20+32)
	packed = append(packed, common.HexToAddress(recipient).Bytes()...)
	packed = append(packed, common.LeftPadBytes(tokenAmount.Bytes(), 32)...)
	packed = append(packed, common.HexToAddress(tokenAddress).Bytes()...)
	packed = append(packed, common.LeftPadBytes(salt.Bytes(), 32)...)

	return "0x" + common.Bytes2Hex(crypto.Keccak256(packed)), nil
}

// QuantizeAmount 将人类可读金额按小数位数转成链上整数
// 量化后不是整数说明金额精度超出代币精度，直接报错而不是舍入
func QuantizeAmount(humanAmount string, decimals int) (*big.Int, error) {
	amount, err := decimal.NewFromString(humanAmount)
	if err != nil {
		return nil, &PreconditionError{Reason: "金额格式错误: " + humanAmount, Err: err}
	}
	quantized := amount.Shift(int32(decimals))
	if !quantized.IsInteger() {
		return nil, newPreconditionError("金额 %s 超出 %d 位小数精度", humanAmount, decimals)
	}
	if quantized.Sign() <= 0 {
		return nil, newPreconditionError("金额必须为正数: %s", humanAmount)
	}
	return quantized.BigInt(), nil
}
