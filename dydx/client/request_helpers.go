package client

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dexbot/godydx/dydx/starkex"
)

// isoFormat 毫秒精度的 UTC ISO-8601 时间格式
const isoFormat = "2006-01-02T15:04:05.000Z"

// accountIDNamespace 账户 ID 派生用的 uuid v5 命名空间
var accountIDNamespace = uuid.MustParse("0f9da948-a6fb-4c45-9edc-4685c3f3317d")

// GenerateNowISO 生成当前时刻的 ISO 时间戳
func GenerateNowISO() string {
	return time.Now().UTC().Format(isoFormat)
}

// EpochSecondsToISO 秒级时间戳转 ISO 字符串
func EpochSecondsToISO(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).UTC().Format(isoFormat)
}

// ISOToEpochSeconds ISO 字符串转秒级时间戳
// 与 EpochSecondsToISO 在秒粒度上互逆
func ISOToEpochSeconds(iso string) (int64, error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// ResolveExpiration 校验并补全过期时间的两种表示
// 调用方必须且只能提供 ISO 字符串与秒级时间戳中的一种，
// 另一种在此确定性地派生，保证下游两种表示同时存在且一致
func ResolveExpiration(expiration string, expirationEpochSeconds int64) (string, int64, error) {
	if (expiration == "") == (expirationEpochSeconds == 0) {
		return "", 0, &starkex.PreconditionError{
			Reason: "expiration 和 expirationEpochSeconds 必须且只能提供一个",
		}
	}
	if expiration == "" {
		return EpochSecondsToISO(expirationEpochSeconds), expirationEpochSeconds, nil
	}
	epochSeconds, err := ISOToEpochSeconds(expiration)
	if err != nil {
		return "", 0, &starkex.PreconditionError{Reason: "expiration 格式错误", Err: err}
	}
	return expiration, epochSeconds, nil
}

// RandomClientID 生成随机 client id
// 用于动作的幂等重提交与撤销；唯一性由随机性保证，本层不做强制
func RandomClientID() string {
	return uuid.NewString()
}

// GetAccountID 从以太坊地址派生账户 ID（uuid v5，地址统一小写）
func GetAccountID(ethereumAddress string) string {
	return uuid.NewSHA1(accountIDNamespace, []byte(strings.ToLower(ethereumAddress))).String()
}

// GenerateQueryPath 把查询参数折叠进请求路径
// 空值参数直接跳过；url.Values 编码后按 key 排序，同样的参数永远产生同样的路径
func GenerateQueryPath(endpoint string, params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		if v != "" {
			values.Set(k, v)
		}
	}
	if len(values) == 0 {
		return endpoint
	}
	return endpoint + "?" + values.Encode()
}
