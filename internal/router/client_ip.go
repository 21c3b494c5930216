package router

import (
	"net"
	"net/http"

	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"github.com/labstack/echo/v4"
)

// ipExtractor decides which address the rate limiter sees as the client.
//
// Without trusted proxies X-Forwarded-For is ignored. With them, the header is
// walked from the right and the first hop outside the trusted ranges wins.
func ipExtractor(trustedProxies []string) echo.IPExtractor {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect()
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			continue
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(options...)
}

// APIGatewaySourceIP reads the caller address API Gateway recorded in the
// proxy event. Requests that did not come through the Lambda adapter fall
// back to next.
func APIGatewaySourceIP(next echo.IPExtractor) echo.IPExtractor {
	return func(req *http.Request) string {
		if rc, ok := core.GetAPIGatewayContextFromContext(req.Context()); ok && rc.Identity.SourceIP != "" {
			return rc.Identity.SourceIP
		}
		return next(req)
	}
}
