package signing

const (
	// EIP712DomainName EIP712 域名名称
	EIP712DomainName = "dydx"

	// EIP712DomainVersion EIP712 版本
	EIP712DomainVersion = "1.0"

	// OnboardingAction 开户签名动作
	OnboardingAction = "dYdX Onboarding"

	// OnboardingOnlySignOn 限定签名站点
	OnboardingOnlySignOn = "https://trade.dydx.exchange"
)
