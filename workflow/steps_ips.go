package workflow

func (r *Runner) ListIPs() error {
	r.begin(stepListIPs)
	r.printf("Retrieving all IPs...\n")

	ips, err := r.service.ListIPs()
	if err != nil {
		return r.fail("list IPs", err)
	}

	r.printf("✓ Retrieved %d IP(s)\n", len(ips))
	for _, ip := range ips {
		r.printf("  - ID: %d\n", ip.Id)
		r.printf("    IP Address: %s\n", ip.PublicIp)
		if ip.ReverseDnsHostname != "" {
			r.printf("    Reverse DNS: %s\n", ip.ReverseDnsHostname)
		}
		if created := formatUnix(ip.Created); created != "" {
			r.printf("    Created: %s\n", created)
		}
		r.printf("\n")
	}
	return nil
}

// CreateIPPool creates a round-robin pool holding the first available IP.
// Without any IP it prints an advisory and creates nothing.
func (r *Runner) CreateIPPool() error {
	r.begin(stepCreateIPPool)

	ips, err := r.service.ListIPs()
	if err != nil {
		return r.fail("create IP pool", err)
	}
	if len(ips) == 0 {
		r.printf("⚠️  No IPs available. Please allocate IPs first.\n")
		return nil
	}

	req := ipPoolRequest(ipPoolName(r.now()), ips)
	r.printf("Creating IP pool: %s\n", req.Name)
	r.printf("  Routing Strategy: %s\n", req.RoutingStrategy)
	r.printf("  IPs: %d\n", len(req.Ips))
	r.printf("  Warmup Interval: %d hours\n", req.WarmupInterval)

	pool, err := r.service.CreateIPPool(req)
	if err != nil {
		return r.fail("create IP pool", err)
	}
	r.session.setIpPool(pool.Id, pool.Name)

	r.printf("✓ IP pool created successfully!\n")
	r.printf("  ID: %d\n", pool.Id)
	r.printf("  Name: %s\n", pool.Name)
	r.printf("  Routing Strategy: %s\n", pool.RoutingStrategy)
	r.printf("  IPs in pool: %d\n", len(pool.Ips))
	return nil
}

func (r *Runner) ListIPPools() error {
	r.begin(stepListIPPools)
	r.printf("Retrieving all IP pools...\n")

	pools, err := r.service.ListIPPools()
	if err != nil {
		return r.fail("list IP pools", err)
	}

	r.printf("✓ Retrieved %d IP pool(s)\n", len(pools))
	for _, p := range pools {
		r.printf("  - ID: %d\n", p.Id)
		r.printf("    Name: %s\n", p.Name)
		r.printf("    Routing Strategy: %s\n", p.RoutingStrategy)
		r.printf("    IPs in pool: %d\n", len(p.Ips))
		for _, ip := range p.Ips {
			r.printf("      - %s\n", ip.PublicIp)
		}
		r.printf("\n")
	}
	return nil
}
