package types

type RoutingStrategy int

const (
	RoutingRoundRobin    RoutingStrategy = 0
	RoutingEmailProvider RoutingStrategy = 1
)

func (s RoutingStrategy) String() string {
	if s == RoutingEmailProvider {
		return "Email Provider"
	}
	return "Round Robin"
}

type OverflowStrategy int

const (
	OverflowNone OverflowStrategy = 0
	OverflowPool OverflowStrategy = 1
)

type IP struct {
	Id                 int64  `json:"id"`
	PublicIp           string `json:"publicIP"`
	ReverseDnsHostname string `json:"reverseDNSHostname,omitempty"`
	Created            int64  `json:"created,omitempty"`
}

// EIP references an IP by its public address in pool requests.
type EIP struct {
	PublicIp string `json:"publicIP"`
}

type IPPool struct {
	Id               int64            `json:"id"`
	Name             string           `json:"name"`
	RoutingStrategy  RoutingStrategy  `json:"routingStrategy"`
	Ips              []IP             `json:"ips"`
	WarmupInterval   int              `json:"warmupInterval,omitempty"`
	OverflowStrategy OverflowStrategy `json:"overflowStrategy"`
	Created          int64            `json:"created,omitempty"`
}

type IPPoolCreateRequest struct {
	Name             string           `json:"name"`
	RoutingStrategy  RoutingStrategy  `json:"routingStrategy"`
	Ips              []EIP            `json:"ips"`
	WarmupInterval   int              `json:"warmupInterval"`
	OverflowStrategy OverflowStrategy `json:"overflowStrategy"`
	OverflowPoolName string           `json:"overflowPoolName,omitempty"`
}
