package postgres

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            kind TEXT NOT NULL,
            available_balance NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (available_balance >= 0),
            average_rating NUMERIC(3,2) NOT NULL DEFAULT 0,
            total_reviews INTEGER NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS provider_services (
            id UUID PRIMARY KEY,
            provider_id UUID NOT NULL REFERENCES users(id),
            name TEXT NOT NULL,
            base_price NUMERIC(14,2),
            allow_instant_booking BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            client_id UUID NOT NULL REFERENCES users(id),
            provider_id UUID NOT NULL REFERENCES users(id),
            status TEXT NOT NULL,
            price NUMERIC(14,2),
            proposed_date TIMESTAMPTZ,
            note TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            CHECK (client_id <> provider_id)
        )`,
	`CREATE TABLE IF NOT EXISTS order_items (
            id UUID PRIMARY KEY,
            order_id UUID NOT NULL REFERENCES orders(id),
            service_id UUID NOT NULL REFERENCES provider_services(id),
            position INTEGER NOT NULL,
            quantity INTEGER NOT NULL CHECK (quantity > 0),
            unit_price NUMERIC(14,2),
            UNIQUE (order_id, position)
        )`,
	`CREATE TABLE IF NOT EXISTS proposals (
            id UUID PRIMARY KEY,
            order_id UUID NOT NULL REFERENCES orders(id),
            price NUMERIC(14,2) NOT NULL CHECK (price > 0),
            details TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS order_change_requests (
            id UUID PRIMARY KEY,
            order_id UUID NOT NULL REFERENCES orders(id),
            requested_by_id UUID NOT NULL REFERENCES users(id),
            type TEXT NOT NULL,
            details TEXT NOT NULL,
            proposed_price NUMERIC(14,2),
            proposed_date TIMESTAMPTZ,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            resolved_at TIMESTAMPTZ
        )`,
	`CREATE TABLE IF NOT EXISTS reviews (
            id UUID PRIMARY KEY,
            order_id UUID UNIQUE NOT NULL REFERENCES orders(id),
            reviewer_id UUID NOT NULL REFERENCES users(id),
            provider_id UUID NOT NULL REFERENCES users(id),
            rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
            comment TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS fund_releases (
            order_id UUID PRIMARY KEY REFERENCES orders(id),
            provider_id UUID NOT NULL REFERENCES users(id),
            amount NUMERIC(14,2) NOT NULL,
            released_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS withdrawals (
            id UUID PRIMARY KEY,
            provider_id UUID NOT NULL REFERENCES users(id),
            amount NUMERIC(14,2) NOT NULL CHECK (amount > 0),
            status TEXT NOT NULL,
            processed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS provider_payout_info (
            provider_id UUID PRIMARY KEY REFERENCES users(id),
            payout_type TEXT NOT NULL,
            pix_key TEXT,
            bank_name TEXT,
            agency_number TEXT,
            account_number TEXT,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS notifications (
            id UUID PRIMARY KEY,
            user_id UUID NOT NULL REFERENCES users(id),
            type TEXT NOT NULL,
            message TEXT NOT NULL,
            order_id UUID REFERENCES orders(id),
            is_read BOOLEAN NOT NULL DEFAULT FALSE,
            deleted BOOLEAN NOT NULL DEFAULT FALSE,
            claimed_at TIMESTAMPTZ,
            dispatched_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE INDEX IF NOT EXISTS idx_orders_client ON orders(client_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_provider ON orders(provider_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_provider ON reviews(provider_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_withdrawals_provider ON withdrawals(provider_id, processed_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_pending ON notifications(created_at) WHERE dispatched_at IS NULL`,
}
