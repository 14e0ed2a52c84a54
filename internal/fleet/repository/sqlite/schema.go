package sqlite

const migrationStops = `
CREATE TABLE IF NOT EXISTS stops (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    latitude REAL,
    longitude REAL
);
`

const migrationPaths = `
CREATE TABLE IF NOT EXISTS paths (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);
`

const migrationPathStops = `
CREATE TABLE IF NOT EXISTS path_stops (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path_id INTEGER,
    stop_id INTEGER,
    order_index INTEGER,
    FOREIGN KEY (path_id) REFERENCES paths(id),
    FOREIGN KEY (stop_id) REFERENCES stops(id)
);
`

const migrationRoutes = `
CREATE TABLE IF NOT EXISTS routes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path_id INTEGER,
    route_display_name TEXT,
    shift_time TEXT,
    direction TEXT,
    start_point TEXT,
    end_point TEXT,
    status TEXT DEFAULT 'active',
    FOREIGN KEY (path_id) REFERENCES paths(id)
);
`

const migrationVehicles = `
CREATE TABLE IF NOT EXISTS vehicles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    license_plate TEXT UNIQUE,
    type TEXT,
    capacity INTEGER,
    model TEXT
);
`

const migrationDrivers = `
CREATE TABLE IF NOT EXISTS drivers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT,
    license_number TEXT,
    phone TEXT
);
`

const migrationDailyTrips = `
CREATE TABLE IF NOT EXISTS daily_trips (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    route_id INTEGER,
    display_name TEXT,
    booking_status_percentage REAL,
    live_status TEXT,
    date TEXT,
    FOREIGN KEY (route_id) REFERENCES routes(id)
);
`

// trip_id is UNIQUE: at most one active deployment per trip.
const migrationDeployments = `
CREATE TABLE IF NOT EXISTS deployments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    trip_id INTEGER UNIQUE,
    vehicle_id INTEGER,
    driver_id INTEGER,
    FOREIGN KEY (trip_id) REFERENCES daily_trips(id),
    FOREIGN KEY (vehicle_id) REFERENCES vehicles(id),
    FOREIGN KEY (driver_id) REFERENCES drivers(id)
);
`

const migrationIndexes = `
CREATE INDEX IF NOT EXISTS idx_path_stops_path_id ON path_stops(path_id);
CREATE INDEX IF NOT EXISTS idx_routes_path_id ON routes(path_id);
CREATE INDEX IF NOT EXISTS idx_daily_trips_route_id ON daily_trips(route_id);
CREATE INDEX IF NOT EXISTS idx_deployments_trip_id ON deployments(trip_id);
`
